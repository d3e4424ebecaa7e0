package lang_test

import (
	"fmt"

	"github.com/tcard/edn/lang"
)

func ExampleKeyword_String() {
	fmt.Println(lang.NewKeyword("baz"))
	fmt.Println(lang.NamespacedKeyword("baz", "bar"))
	// Output:
	// :baz
	// :bar/baz
}

func ExampleKeyword_Equal() {
	fmt.Println(lang.NewKeyword("baz") == lang.NewKeyword("baz"))
	fmt.Println(lang.NewKeyword("baz").Equal(lang.NamespacedKeyword("baz", "qux")))
	// Output:
	// true
	// false
}
