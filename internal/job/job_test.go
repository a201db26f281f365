package job

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		arg     string
		want    Spec
		wantErr bool
	}{
		{arg: "Notepad:10", want: Spec{Name: "Notepad", Burst: 10}},
		{arg: "ns:svc:42", want: Spec{Name: "ns:svc", Burst: 42}},
		{arg: "neg:-5", want: Spec{Name: "neg", Burst: -5}},
		{arg: "noburst", wantErr: true},
		{arg: ":10", wantErr: true},
		{arg: "name:", wantErr: true},
		{arg: "name:ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := Parse(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) = %+v, want error", tt.arg, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll([]string{"a:1", "b:2"})
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	want := []Spec{{Name: "a", Burst: 1}, {Name: "b", Burst: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseAll = %+v, want %+v", got, want)
	}

	if _, err := ParseAll([]string{"a:1", "broken"}); err == nil {
		t.Error("expected error for bad argument")
	}
}

func TestDemo(t *testing.T) {
	d := Demo()
	if len(d) != 4 || d[0].Name != "Chrome_Tab1" || d[3].Burst != 85 {
		t.Errorf("unexpected demo workload %+v", d)
	}
}
