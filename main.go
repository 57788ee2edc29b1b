/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package main

import (
	"fmt"
	"os"

	"github.com/Paintersrp/lens/internal/state"
	"github.com/Paintersrp/lens/pkg/cmd/initialize"
	"github.com/Paintersrp/lens/pkg/cmd/root"
)

func main() {
	os.Exit(run())
}

// run keeps os.Exit out of the function owning the state so the deferred
// Close always releases the watcher and index service.
func run() int {
	// init must run before any state exists; everything else needs a
	// configured vault.
	if len(os.Args) > 1 && (os.Args[1] == "init" || os.Args[1] == "initialize") {
		if err := initialize.Run(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	s, err := state.NewState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.Close()

	cmd, err := root.NewCmdRoot(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
