package main

import (
	"os"

	"github.com/heilaoda/libgit2/diff"
	"github.com/heilaoda/libgit2/object/memory"
)

type cmdIndex struct {
	outputFlags

	Args struct {
		TreeDir  string `positional-arg-name:"tree-dir" required:"true"`
		IndexDir string `positional-arg-name:"index-dir" required:"true"`
	} `positional-args:"yes"`
}

func (c *cmdIndex) Execute(args []string) error {
	store := memory.NewStorage(c.Args.IndexDir)

	tree, err := loadTree(store, c.Args.TreeDir)
	if err != nil {
		return err
	}
	idx, err := loadIndex(store, c.Args.IndexDir)
	if err != nil {
		return err
	}

	list, err := diff.IndexToTree(store, diff.DefaultOptions(), idx, tree)
	if err != nil {
		return err
	}

	return render(os.Stdout, list, c.outputFlags)
}
