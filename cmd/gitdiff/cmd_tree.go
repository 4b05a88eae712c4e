package main

import (
	"os"

	"github.com/heilaoda/libgit2/diff"
	"github.com/heilaoda/libgit2/object/memory"
)

type cmdTree struct {
	outputFlags

	Args struct {
		OldDir string `positional-arg-name:"old-dir" required:"true"`
		NewDir string `positional-arg-name:"new-dir" required:"true"`
	} `positional-args:"yes"`
}

func (c *cmdTree) Execute(args []string) error {
	store := memory.NewStorage("")

	oldTree, err := loadTree(store, c.Args.OldDir)
	if err != nil {
		return err
	}
	newTree, err := loadTree(store, c.Args.NewDir)
	if err != nil {
		return err
	}

	list, err := diff.TreeToTree(store, diff.DefaultOptions(), oldTree, newTree)
	if err != nil {
		return err
	}

	return render(os.Stdout, list, c.outputFlags)
}
