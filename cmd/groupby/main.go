package main

import (
	"fmt"
	"slices"

	"github.com/scottcagno/sortedgroups/pkg/sortedgroups"
)

func main() {

	words := []string{
		"mango", "apple", "plum", "apricot", "banana",
		"melon", "pear", "blueberry", "avocado", "peach",
	}

	// group words by their first letter
	sg := sortedgroups.FromSeq(slices.Values(words), func(w string) byte {
		return w[0]
	})

	fmt.Printf("%d words in %d groups\n", sg.Len(), sg.GroupsLen())

	// groups come out in ascending letter order, words in the
	// order they appeared in the list
	for letter, group := range sg.Groups() {
		fmt.Printf("%c: %v\n", letter, group)
	}
}
