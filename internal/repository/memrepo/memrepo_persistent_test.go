package memrepo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mrled/suns/textval/internal/model"
)

func ExampleMemoryRepository() {
	tmpFile, _ := os.CreateTemp("", "example-*.json")
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	ctx := context.Background()
	repo, _ := NewMemoryRepositoryWithPersistence(tmpPath)

	record := &model.CheckRecord{
		ID:        "0b9d3c52-6f1e-4a8b-9c55-2f0d7c1e4a10",
		Operation: model.OpPalindrome,
		Input:     []string{"radar"},
		Result:    "true",
		CheckTime: time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC),
	}

	repo.Store(ctx, record)

	// Read the JSON file to show format
	content, _ := os.ReadFile(tmpPath)
	fmt.Println(string(content))

	// Output:
	// [
	//   {
	//     "ID": "0b9d3c52-6f1e-4a8b-9c55-2f0d7c1e4a10",
	//     "Operation": "palindrome",
	//     "Input": [
	//       "radar"
	//     ],
	//     "Result": "true",
	//     "CheckTime": "2025-10-17T12:00:00Z",
	//     "Rev": 1
	//   }
	// ]
}
