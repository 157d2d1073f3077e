package slashfill

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Example of a type that declares its own extraction/serialization pair.
//
// A half-typed address like "10.0." cannot parse into a ServerAddress, so the
// partial stays a raw string even though the fully parsed form is a struct.
// Implementing Autocompletable shadows the string-convertible fallback the
// String method would otherwise select.
type ServerAddress struct {
	Host string
	Port int
}

func (ServerAddress) ExtractPartial(v Value) (any, error) {
	raw, ok := v.AsString()
	if !ok {
		return nil, StructureMismatchError{Expected: ExpectedString}
	}
	return raw, nil
}

func (a ServerAddress) IntoValue() Value {
	return StringValue(a.String())
}

func (a ServerAddress) String() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

var exampleAddresses = []ServerAddress{
	{Host: "10.0.0.5", Port: 22},
	{Host: "10.0.1.9", Port: 443},
	{Host: "192.168.1.1", Port: 8080},
}

func ExampleCustomType() {
	handler := NewHandler()

	target := MustParam[ServerAddress]("target", func(ctx context.Context, partial any) ([]Choice, error) {
		prefix := partial.(string)
		var choices []Choice
		for _, addr := range exampleAddresses {
			if strings.HasPrefix(addr.String(), prefix) {
				choices = append(choices, Choice{Name: addr.String(), Value: addr})
			}
		}
		return choices, nil
	})

	if err := handler.Register("connect", target); err != nil {
		log.Fatalf("Failed to register command: %v", err)
	}

	payload := []byte(`{
		"id": "812429655701913601",
		"data": {
			"name": "connect",
			"options": [
				{"name": "target", "type": 3, "value": "10.0.", "focused": true}
			]
		}
	}`)

	body, err := handler.Respond(context.Background(), payload)
	if err != nil {
		log.Fatalf("Autocomplete failed: %v", err)
	}
	fmt.Printf("Response: %s\n", body)
}
