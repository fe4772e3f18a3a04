package main

import "fmt"

// ResetCmd deletes all app-scoped data from the local store.
type ResetCmd struct {
	Force bool `help:"Confirm deleting all locally stored data." required:""`
}

func (c *ResetCmd) Run(deps *Dependencies) error {
	deps.Accessor.ClearApp(deps.Ctx)
	fmt.Fprintln(deps.Stdout, "All local data deleted")
	return nil
}
