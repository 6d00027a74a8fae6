package eval_test

import (
	"fmt"

	"github.com/hupe1980/rankgo/eval"
)

func ExampleNDCG() {
	// Relevance judgments aligned positionally with a ranked result list.
	score, _ := eval.NDCG([]float64{3, 2, 0, 1})
	fmt.Printf("%.2f\n", score)

	// Output:
	// 0.99
}

func ExampleNDCGAt() {
	score, _ := eval.NDCGAt([]float64{0, 3, 2}, 1)
	fmt.Printf("%.2f\n", score)

	// Output:
	// 0.00
}
