// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/rolodex"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	db, err := rolodex.NewDatabase("./rolodex_db")
	if err != nil {
		panic(err)
	}
	defer db.Close()
	searcher, err := db.NewSearcher()
	if err != nil {
		panic(err)
	}
	defer searcher.Release()

	query := "who is sarah"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	ctx := context.Background()
	results, err := searcher.Search(ctx, query, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d results\n", len(results))
	for i, result := range results {
		name := "?"
		if result.Person != nil {
			name = result.Person.FullName()
		}
		fmt.Printf("%d: [%s] %s: %s\n", i, result.Type, name, result.Answer)
		if result.Snippet != "" {
			fmt.Printf("   %s\n", result.Snippet)
		}
	}
}
