package snapstore

import (
	"fmt"

	"github.com/agoramind/govscope/schema"
)

// PrintStoreStatus prints snapshot store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Snapshot Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Snapshots: %d\n", status.TotalSnapshots)
	if status.TotalSnapshots > 0 {
		if !status.LastSnapshot.IsZero() {
			fmt.Printf("Last Snapshot: %s\n", status.LastSnapshot.Format("2006-01-02 15:04:05"))
		}
		if !status.OldestSnapshot.IsZero() {
			fmt.Printf("Oldest Snapshot: %s\n", status.OldestSnapshot.Format("2006-01-02 15:04:05"))
		}
	}
}
