package qualifier

import (
	"strings"
	"testing"
)

func benchInput(n int) string {
	good := join(baseFields()...)
	middle := join(append([]string{"Dela Cruz", "Maria", "Santos"}, baseFields()[2:]...)...)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			b.WriteString(good)
		} else {
			b.WriteString(middle)
		}
		b.WriteString("\r\n")
	}
	return b.String()
}

func BenchmarkFromString(b *testing.B) {
	in := benchInput(1000)
	b.SetBytes(int64(len(in)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, err := range FromString(in).All() {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkFromReader(b *testing.B) {
	in := benchInput(1000)
	b.SetBytes(int64(len(in)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, err := range FromReader(strings.NewReader(in)).All() {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
