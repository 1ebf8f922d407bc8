package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/ohash"
	"github.com/theflywheel/ohash/probe"
)

func main() {
	// Create a table with 7 slots that grows past half full
	t, err := ohash.New(ohash.WithSize[string](7), ohash.WithMaxLoadFactor[string](0.5))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	fmt.Println("Table created with", t.Cap(), "slots")

	// Insert some data
	for i, word := range []string{"alpha", "beta", "gamma"} {
		if _, err := t.Insert(probe.Int(i*10), word); err != nil {
			log.Fatalf("Failed to insert key %d: %v", i*10, err)
		}
	}
	fmt.Println("Inserted 3 entries:", t.Layout())

	// One more pushes the load factor past 0.5 and the table grows
	if _, err := t.Insert(probe.Text("delta"), "delta"); err != nil {
		log.Fatalf("Failed to insert delta: %v", err)
	}
	fmt.Printf("After growth: %d slots, load factor %.2f\n", t.Cap(), t.LoadFactor())

	// Same key and value again only bumps the count
	if _, err := t.Insert(probe.Text("delta"), "delta"); err != nil {
		log.Fatalf("Failed to count delta: %v", err)
	}

	// Same key with another value replaces it
	inserted, err := t.Insert(probe.Int(10), "BETA")
	if err != nil {
		log.Fatalf("Failed to update key 10: %v", err)
	}
	fmt.Println("Key 10 newly inserted:", inserted)

	// Retrieve and display values
	for _, k := range []probe.Key{probe.Int(0), probe.Int(10), probe.Int(30), probe.Text("delta")} {
		e, found, err := t.Get(k)
		if err != nil {
			log.Fatalf("Failed to look up %s: %v", k, err)
		}
		if found {
			fmt.Printf("Key %s => %s (count %d)\n", k, e.Value, e.Count)
		} else {
			fmt.Printf("Key %s not found\n", k)
		}
	}

	// Delete leaves a tombstone that a later insert may reuse
	if err := t.Delete(probe.Int(20)); err != nil {
		log.Fatalf("Failed to delete key 20: %v", err)
	}
	if err := t.Delete(probe.Int(20)); err != nil {
		fmt.Println("Second delete:", err)
	}

	fmt.Println(t)
	fmt.Println("Example completed successfully")
}
