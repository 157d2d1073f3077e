package slashfill

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Example session store backing the autocomplete callbacks below.
var exampleSessions = []uuid.UUID{
	uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
	uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
	uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"),
}

func ExampleUsage() {
	handler := NewHandler()

	// A uuid parameter rides the string-convertible fallback: the partial is
	// the raw typed prefix, and chosen candidates serialize via String().
	session := MustParam[uuid.UUID]("session", func(ctx context.Context, partial any) ([]Choice, error) {
		prefix := partial.(string)
		var choices []Choice
		for _, id := range exampleSessions {
			if strings.HasPrefix(id.String(), prefix) {
				choices = append(choices, Choice{Name: id.String(), Value: id})
			}
		}
		return choices, nil
	})

	// An integer parameter: the partial arrives already converted to uint8,
	// bounds-checked against the type's own range.
	level := MustParam[uint8]("level", func(ctx context.Context, partial any) ([]Choice, error) {
		typed := int(partial.(uint8))
		var choices []Choice
		for l := typed; l < typed+5 && l <= math.MaxUint8; l++ {
			choices = append(choices, Choice{Name: fmt.Sprintf("level %d", l), Value: uint8(l)})
		}
		return choices, nil
	})

	if err := handler.Register("inspect", session, level); err != nil {
		log.Fatalf("Failed to register command: %v", err)
	}

	payload := []byte(`{
		"id": "812429655701913600",
		"data": {
			"name": "inspect",
			"options": [
				{"name": "session", "type": 3, "value": "6ba7", "focused": true}
			]
		}
	}`)

	body, err := handler.Respond(context.Background(), payload)
	if err != nil {
		log.Fatalf("Autocomplete failed: %v", err)
	}
	fmt.Printf("Response: %s\n", body)
}
