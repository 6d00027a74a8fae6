package rankgo_test

import (
	"fmt"

	rankgo "github.com/hupe1980/rankgo"
	"github.com/hupe1980/rankgo/lexical"
)

func Example() {
	idx := lexical.New()
	idx.AddDocument(0, []string{"ranking", "with", "bm25"})
	idx.AddDocument(1, []string{"dense", "vector", "search"})
	idx.AddDocument(2, []string{"learning", "to", "rank"})

	results, err := idx.Retrieve([]string{"bm25"}, 10)
	if err != nil {
		panic(err)
	}

	for _, r := range results {
		fmt.Printf("doc=%d\n", r.ID)
	}

	// Output:
	// doc=0
}

func ExampleFuseRRF() {
	lex := lexical.New()
	lex.AddDocument(0, []string{"hybrid", "search"})
	lex.AddDocument(1, []string{"keyword", "only"})

	lexResults, _ := lex.Retrieve([]string{"hybrid"}, 10)

	fused, _ := rankgo.FuseRRF(10, rankgo.DefaultRRFK, lexResults)
	fmt.Println(fused[0].ID)

	// Output:
	// 0
}
