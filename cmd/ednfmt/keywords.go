package main

import (
	"github.com/tcard/edn/lang"
	"github.com/tcard/edn/persistent"
)

// collectKeywords appends the keywords in form to kws, depth first, in reading
// order.
func collectKeywords(form interface{}, kws []lang.Keyword) []lang.Keyword {
	switch f := form.(type) {
	case lang.Keyword:
		kws = append(kws, f)
	case *persistent.List:
		for _, x := range f.Seq() {
			kws = collectKeywords(x, kws)
		}
	case *persistent.Vector:
		for _, x := range f.Seq() {
			kws = collectKeywords(x, kws)
		}
	case *persistent.Map:
		for _, k := range f.Keys() {
			v, _ := f.Get(k)
			kws = collectKeywords(k, kws)
			kws = collectKeywords(v, kws)
		}
	}
	return kws
}
