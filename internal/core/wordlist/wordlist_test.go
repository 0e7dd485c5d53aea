package wordlist

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestDefaultCorpus(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	if got, want := c.Languages(), []string{"de", "en", "es", "fr"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("languages = %v, want %v", got, want)
	}

	must := map[string][]string{
		"en": {"butt", "butts", "arse", "arses", "a$$", "fudge packer", "blow job", "son-of-a-bitch", "tsk"},
		"de": {"arschloch"},
		"es": {"culo"},
		"fr": {"cul"},
	}
	for code, words := range must {
		set := make(map[string]struct{}, len(c[code]))
		for _, w := range c[code] {
			set[w] = struct{}{}
		}
		for _, w := range words {
			if _, ok := set[w]; !ok {
				t.Fatalf("%s list missing %q", code, w)
			}
		}
	}
}

func TestLoadFallsBackToFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"lists/xx.json":    {Data: []byte(`{"words":["Foo"," foo ","","bar baz"]}`)},
		"lists/README.txt": {Data: []byte("ignored")},
	}
	c, err := Load(fsys, "lists")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := c["xx"], []string{"foo", "bar baz"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("xx = %v, want %v", got, want)
	}
	if !c.Has("xx") || c.Has("yy") {
		t.Fatalf("Has mismatch")
	}
}

func TestLoadErrors(t *testing.T) {
	bad := fstest.MapFS{"d/en.json": {Data: []byte(`{"language":`)}}
	if _, err := Load(bad, "d"); err == nil {
		t.Fatalf("expected parse error")
	}

	dup := fstest.MapFS{
		"d/a.json": {Data: []byte(`{"language":"en","words":["x"]}`)},
		"d/b.json": {Data: []byte(`{"language":"EN","words":["y"]}`)},
	}
	if _, err := Load(dup, "d"); err == nil {
		t.Fatalf("expected duplicate language error")
	}

	if _, err := Load(fstest.MapFS{}, "missing"); err == nil {
		t.Fatalf("expected missing dir error")
	}
}

func TestMarshalSortsAndCleans(t *testing.T) {
	b, err := Marshal("de", []string{"Zebra", "apfel", "zebra"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "{\n  \"language\": \"de\",\n  \"words\": [\n    \"apfel\",\n    \"zebra\"\n  ]\n}\n"
	if string(b) != want {
		t.Fatalf("Marshal = %q, want %q", b, want)
	}
}
