package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/router"
)

// Page identifiers - use typed constants for compile-time safety
const (
	PageChannels router.Page = iota
	PageChannelDetail
)

// Channel is the domain type carried as page input.
type Channel struct {
	ID   int
	Name string
}

// Example demonstrates forward navigation, back through history, and the
// exit hook firing once history is exhausted.
func Example() {
	r := router.New(func() {
		fmt.Println("exit hook: leaving application")
	})

	r.Register(PageChannels, func(input any) {
		fmt.Println("bound: channel grid")
	})

	r.Register(PageChannelDetail, func(input any) {
		ch := input.(Channel)
		fmt.Printf("bound: detail for %s\n", ch.Name)
	})

	_ = r.Start(PageChannels, nil)
	_ = r.Navigate(PageChannelDetail, Channel{ID: 7, Name: "RAI Uno"})

	r.Back() // returns to the channel grid
	r.Back() // history empty: exit hook fires

	// Output:
	// bound: channel grid
	// bound: detail for RAI Uno
	// bound: channel grid
	// exit hook: leaving application
}
