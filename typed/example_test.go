package typed_test

import (
	"fmt"

	"github.com/mre/borrow-bag/typed"
)

func Example() {
	bag0 := typed.New()
	bag1, greeting := typed.AddTo0(bag0, "hello")
	bag2, answer := typed.AddTo1(bag1, 42)
	bag3, ok := typed.AddTo2(bag2, true)

	fmt.Println(*bag3.Borrow0(greeting), *bag3.Borrow1(answer), *bag3.Borrow2(ok))
	// Output: hello 42 true
}
