package utils_test

import (
	"reflect"
	"testing"

	"apibay/utils"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{name: "bytes", size: 512, want: "512 B"},
		{name: "kibibytes", size: 2048, want: "2.00 KiB"},
		{name: "mebibytes", size: 123456789, want: "117.74 MiB"},
		{name: "gibibytes", size: 5 * 1024 * 1024 * 1024, want: "5.00 GiB"},
		{name: "zero", size: 0, want: "0 B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.FormatSize(tt.size); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	got := utils.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	if want := []int{2, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}
