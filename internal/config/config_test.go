package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chronos-tachyon/treekit/internal/config"
)

var _ = Describe("Config", func() {
	noEnv := func(string) (string, bool) { return "", false }

	Describe("FromMap", func() {
		It("Should use defaults when nothing is set", func() {
			cfg, err := config.FromMap(map[string]string{}, noEnv)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Frequencies).To(Equal(config.DefaultFrequencies))
			Expect(cfg.Verbose).To(BeFalse())
		})

		It("Should prefer the environment over file values", func() {
			lookup := func(key string) (string, bool) {
				if key == config.FrequenciesKey {
					return "env.txt", true
				}
				return "", false
			}
			cfg, err := config.FromMap(map[string]string{
				config.FrequenciesKey: "file.txt",
				config.VerboseKey:     "true",
			}, lookup)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Frequencies).To(Equal("env.txt"))
			Expect(cfg.Verbose).To(BeTrue())
		})

		It("Should reject a malformed boolean", func() {
			_, err := config.FromMap(map[string]string{config.VerboseKey: "sometimes"}, noEnv)
			Expect(err).To(MatchError(ContainSubstring(config.VerboseKey)))
		})
	})

	Describe("Load", func() {
		It("Should read extra env files and skip missing ones", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "treekit.env")
			Expect(os.WriteFile(path, []byte("TREEKIT_FREQUENCIES=hawaiian.txt\n"), 0o644)).To(Succeed())

			if _, set := os.LookupEnv(config.FrequenciesKey); set {
				Skip(config.FrequenciesKey + " is set in the environment")
			}

			cfg, err := config.Load(path, filepath.Join(dir, "missing.env"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Frequencies).To(Equal("hawaiian.txt"))
		})
	})
})
