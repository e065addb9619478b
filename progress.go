package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/mudflat/riveropt/terra"
)

// PrintUpdates drains the search's progress channel onto a single
// console line, rewriting it in place until the channel closes.
func PrintUpdates(ch <-chan terra.ProgressUpdate, wg *sync.WaitGroup) {
	defer wg.Done()
	if ch == nil {
		return
	}
	fmt.Println("Searching...")
	for {
		select {
		case update, ok := <-ch:
			if !ok {
				return
			}
			fmt.Print("\033[1A\033[K")
			fmt.Printf("%d nodes, %d pruned, best %d\n",
				update.Nodes, update.Pruned, update.BestValue)
		default:
			time.Sleep(50 * time.Millisecond)
		}
	}
}
