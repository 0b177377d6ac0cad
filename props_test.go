package lazy

import "testing"

type propsTestPerson struct {
	Name string
	Age  int
}

func (p propsTestPerson) Greeting() string { return "hi " + p.Name }

func TestWhere(t *testing.T) {
	people := []propsTestPerson{
		{Name: "Ada", Age: 30},
		{Name: "Bo", Age: 25},
		{Name: "Cy", Age: 30},
	}
	got := ToSlice[propsTestPerson](Where[propsTestPerson](FromSlice(people), map[string]any{"Age": 30}))
	if len(got) != 2 || got[0].Name != "Ada" || got[1].Name != "Cy" {
		t.Fatalf("unexpected where result: %v", got)
	}
}

func TestPluck(t *testing.T) {
	people := []propsTestPerson{{Name: "Ada", Age: 30}, {Name: "Bo", Age: 25}}
	names := ToSlice[string](Pluck[propsTestPerson, string](FromSlice(people), "Name"))
	if len(names) != 2 || names[0] != "Ada" || names[1] != "Bo" {
		t.Fatalf("unexpected pluck result: %v", names)
	}
}

func TestPluckMissingFieldYieldsZero(t *testing.T) {
	people := []propsTestPerson{{Name: "Ada", Age: 30}}
	got := ToSlice[int](Pluck[propsTestPerson, int](FromSlice(people), "NoSuchField"))
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected zero value for missing field, got %v", got)
	}
}

func TestInvoke(t *testing.T) {
	people := []propsTestPerson{{Name: "Ada"}, {Name: "Bo"}}
	got := ToSlice[string](Invoke[propsTestPerson, string](FromSlice(people), "Greeting"))
	if len(got) != 2 || got[0] != "hi Ada" || got[1] != "hi Bo" {
		t.Fatalf("unexpected invoke result: %v", got)
	}
}
