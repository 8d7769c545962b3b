package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/critterbits/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered scripts",
	Long:  `Shows every script a scene file can attach to a sprite.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scripts := registry.List()

	if len(scripts) == 0 {
		fmt.Println("No scripts available.")
		return
	}

	fmt.Println("Available scripts:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range scripts {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range scripts {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Reference a script from a sprite with 'script: <name>'.")
}
