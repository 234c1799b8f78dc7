package cli

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/treekit/bst"
)

type bstArgs struct {
	deletes  []string
	searches []string
}

func newBSTCommand(app *App) *cobra.Command {
	var args bstArgs

	cmd := &cobra.Command{
		Use:   "bst KEY...",
		Short: "Build a binary search tree and show its traversals",
		Long: `Insert the given keys into a binary search tree, draw it, print its
pre-, in- and post-order traversals, then run any searches and deletions.
Keys are compared as integers when every key is an integer, and as strings
otherwise.`,
		Example: `treekit bst 50 30 70 20 40 60 80 --delete 50 --delete 30`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, keys []string) error {
			all := append(append(append([]string{}, keys...), args.deletes...), args.searches...)
			if allIntegers(all) {
				atoi := func(s string, _ int) int {
					n, _ := strconv.Atoi(s)
					return n
				}
				runBST(cmd, bst.NewOrdered[int](),
					lo.Map(keys, atoi), lo.Map(args.searches, atoi), lo.Map(args.deletes, atoi))
				return nil
			}
			runBST(cmd, bst.NewOrdered[string](), keys, args.searches, args.deletes)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&args.deletes, "delete", "d", nil, "key to delete after building the tree (repeatable)")
	cmd.Flags().StringArrayVarP(&args.searches, "search", "s", nil, "key to look up after building the tree (repeatable)")
	return cmd
}

func allIntegers(keys []string) bool {
	for _, key := range keys {
		if _, err := strconv.Atoi(key); err != nil {
			return false
		}
	}
	return true
}

func runBST[T any](cmd *cobra.Command, tree *bst.Tree[T], keys, searches, deletes []T) {
	out := cmd.OutOrStdout()

	var errs []error
	for _, key := range keys {
		debugf(cmd, "inserting %v", key)
		if err := tree.Insert(key); err != nil {
			errs = append(errs, err)
		}
	}
	warn(cmd, errs)

	fmt.Fprintln(out, "Breadth-First Display of Tree:")
	printLines(cmd, tree.Render(nil))
	fmt.Fprintf(out, "preorder traversal:\n%s\n", joinItems(tree.PreOrder()))
	fmt.Fprintf(out, "inorder traversal:\n%s\n", joinItems(tree.InOrder()))
	fmt.Fprintf(out, "postorder traversal:\n%s\n", joinItems(tree.PostOrder()))

	for _, key := range searches {
		item, err := tree.Search(key)
		if err != nil {
			warn(cmd, []error{err})
			continue
		}
		fmt.Fprintf(out, "Got: %v\n", item)
	}

	for _, key := range deletes {
		if err := tree.Delete(key); err != nil {
			warn(cmd, []error{err})
			continue
		}
		fmt.Fprintf(out, "After removing %v:\n", key)
		printLines(cmd, tree.Render(nil))
	}
}
