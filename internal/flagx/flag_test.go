package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{"separate value", []string{"-b", "warranty-pdf-bucket", "-g", "ap-northeast-1"}, []string{"-b"}, []string{"-b", "warranty-pdf-bucket"}},
		{"equals form", []string{"-config=prod.json", "-g", "ap-northeast-1"}, []string{"-c", "-config"}, []string{"-config=prod.json"}},
		{"mixed forms keep order", []string{"-config=a.json", "-c", "b.json", "-x", "1"}, []string{"-c", "-config"}, []string{"-config=a.json", "-c", "b.json"}},
		{"unknown flags dropped", []string{"-record", "r.json", "-out=o.pdf", "positional"}, []string{"-c"}, []string{}},
		{"trailing flag without value", []string{"-env"}, []string{"-env"}, []string{"-env"}},
		{"next dash token is not a value", []string{"-c", "-quiet"}, []string{"-c"}, []string{"-c"}},
		{"dash inside equals value", []string{"-t=-weird"}, []string{"-t"}, []string{"-t=-weird"}},
		{"several allowed", []string{"-g", "us-east-1", "-t", "Table", "-record", "x"}, []string{"-g", "-t"}, []string{"-g", "us-east-1", "-t", "Table"}},
		{"empty", []string{}, []string{"-c"}, []string{}},
		{"repeated flag", []string{"-c", "one.json", "-c", "two.json"}, []string{"-c"}, []string{"-c", "one.json", "-c", "two.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"generate", "-c", "/etc/warranty/short.json"}
		assert.Equal(t, "/etc/warranty/short.json", ConfigFileFlag())
	})

	t.Run("long -config with equals", func(t *testing.T) {
		os.Args = []string{"generate", "-config=/etc/warranty/long.json"}
		assert.Equal(t, "/etc/warranty/long.json", ConfigFileFlag())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"generate", "-record", "r.json", "-out", "o.pdf"}
		assert.Empty(t, ConfigFileFlag())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"generate", "-c", "/a.json", "-config", "/b.json"}
		assert.Equal(t, "/b.json", ConfigFileFlag())
	})
}

func TestEnvFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"certgen", "-c", "cfg.json", "-env", "local.env"}
	assert.Equal(t, "local.env", EnvFileFlag())

	os.Args = []string{"certgen"}
	assert.Empty(t, EnvFileFlag())
}
