package envgroup_test

import (
	"testing"

	"github.com/joho/godotenv"

	"github.com/Azhovan/envgroup"
)

// End to end with a real .env loader: godotenv populates the process
// environment first, then every lookup goes through os.LookupEnv.
func TestLookupAfterDotenvLoad(t *testing.T) {
	if err := godotenv.Load("testdata/basic.env"); err != nil {
		t.Fatalf("load testdata/basic.env: %v", err)
	}

	an := envgroup.MustNew("AnEnv", []string{"Lol", "TeamJaws", "Mdr"})
	en := envgroup.MustNew("En", []string{"Kappa", "Pog", "Mdr"})

	tests := []struct {
		name     string
		variable envgroup.Var
		key      string
		value    string
	}{
		{name: "an lol", variable: an.Members()[0], key: "AN_LOL", value: "waw"},
		{name: "en pog", variable: en.Members()[1], key: "EN_POG", value: "champ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.variable.Key() != tt.key {
				t.Errorf("Key() = %q, want %q", tt.variable.Key(), tt.key)
			}
			if got := tt.variable.Require(); got != tt.value {
				t.Errorf("Require() = %q, want %q", got, tt.value)
			}
		})
	}

	t.Run("numeric casts", func(t *testing.T) {
		if got := envgroup.MustCast[int](an.Members()[2]); got != 11 {
			t.Errorf("MustCast[int](AN_MDR) = %d, want 11", got)
		}
		if got := envgroup.MustCast[int](en.Members()[0]); got != 12 {
			t.Errorf("MustCast[int](EN_KAPPA) = %d, want 12", got)
		}
		if got := envgroup.MustCast[int](en.Members()[2]); got != 54 {
			t.Errorf("MustCast[int](EN_MDR) = %d, want 54", got)
		}
	})

	t.Run("absent member stays absent", func(t *testing.T) {
		teamJaws := an.Members()[1]
		if _, ok := teamJaws.Lookup(); ok {
			t.Fatal("AN_TEAM_JAWS unexpectedly set; fix testdata/basic.env")
		}

		result := envgroup.Cast[string](teamJaws)
		if !result.IsAbsent() {
			t.Error("Cast on AN_TEAM_JAWS did not report absent")
		}
		if _, err := result.Get(); err == nil || err.Error() != "No AN_TEAM_JAWS in .env file" {
			t.Errorf("Get() error = %v, want \"No AN_TEAM_JAWS in .env file\"", err)
		}
	})
}
