// main is the entry point for the govscope CLI.
package main

import (
	"github.com/agoramind/govscope/cmd"
	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/internal/snapstore"
)

func main() {
	cmd.SetSnapshotManager(snapstore.Manager)

	err := cmd.Execute()

	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("Failed to stop profiling", profErr)
	}
	snapstore.CloseStores()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
