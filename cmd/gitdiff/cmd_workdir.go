package main

import (
	"os"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/heilaoda/libgit2/diff"
	"github.com/heilaoda/libgit2/object/memory"
)

type cmdWorkdir struct {
	outputFlags

	Args struct {
		IndexDir   string `positional-arg-name:"index-dir" required:"true"`
		WorkdirDir string `positional-arg-name:"workdir-dir" required:"true"`
	} `positional-args:"yes"`
}

func (c *cmdWorkdir) Execute(args []string) error {
	store := memory.NewStorage(c.Args.WorkdirDir)

	idx, err := loadIndex(store, c.Args.IndexDir)
	if err != nil {
		return err
	}

	fs := osfs.New(c.Args.WorkdirDir)
	list, err := diff.WorkdirToIndex(store, diff.DefaultOptions(), fs, idx, nil)
	if err != nil {
		return err
	}

	return render(os.Stdout, list, c.outputFlags)
}
