package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/shorts"
	shortsjson "github.com/fwojciec/shorts/json"
	"github.com/fwojciec/shorts/sqlite"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	path := c.DB
	if !filepath.IsAbs(path) {
		path = filepath.Join(deps.WorkDir, path)
	}
	if _, err := os.Stat(path); err != nil {
		return shorts.Errorf(shorts.ENOTFOUND, "archive %s not found", path)
	}

	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open archive at %q: %w", path, err)
	}
	defer db.Close()

	return c.run(deps, sqlite.NewRecordService(db))
}

func (c *RunsCmd) run(deps *Dependencies, runs shorts.RunService) error {
	if c.Delete != "" {
		return c.deleteRun(deps, runs)
	}
	if c.ID != "" {
		records, err := runs.FindRecords(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", shorts.ErrorMessage(err))
			return err
		}
		return shortsjson.NewEncoder().Encode(deps.Stdout, records)
	}

	filter := shorts.RunFilter{Limit: c.Limit}
	if c.Hashtag != "" {
		filter.Hashtag = &c.Hashtag
	}

	found, err := runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shorts.ErrorMessage(err))
		return err
	}

	if len(found) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found.")
		return nil
	}

	for _, r := range found {
		fmt.Fprintf(deps.Stdout, "%s  #%s  %s  discovered=%d failed=%d\n",
			r.ID, r.Hashtag, r.CreatedAt.Local().Format(time.DateTime), r.Discovered, r.Failed)
	}
	return nil
}

func (c *RunsCmd) deleteRun(deps *Dependencies, runs shorts.RunService) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return shorts.Errorf(shorts.EINVALID, "use --force to confirm deletion")
	}

	if err := runs.DeleteRun(deps.Ctx, c.Delete); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shorts.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.Delete)
	return nil
}
