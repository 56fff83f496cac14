// FILE: lixenwraith/parseit/decode_test.go
package parseit_test

import (
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/parseit"
)

// TestScanWithComplexTypes tests scanning with various complex types
func TestScanWithComplexTypes(t *testing.T) {
	type AppConfig struct {
		Host     string        `parseit:"host"`
		Port     int           `parseit:"port"`
		Debug    bool          `parseit:"debug"`
		Ratio    float64       `parseit:"ratio"`
		Timeout  time.Duration `parseit:"timeout"`
		Tags     []string      `parseit:"tags"`
		Ports    []int         `parseit:"ports"`
		IP       net.IP        `parseit:"ip"`
		Subnet   *net.IPNet    `parseit:"subnet"`
		Endpoint *url.URL      `parseit:"endpoint"`
		Version  string        `parseit:"version"`
		Region   string
		Ignored  string `parseit:"-"`
		internal string
	}

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"app.toml": `
host = "file-host"
ratio = 0.5
ports = [80, 443]
subnet = "192.168.1.0/24"
endpoint = "https://api.example.com:8443/v1"
version = "1.2"
Region = "eu"
Ignored = "from-file"
internal = "from-file"
`,
	})

	r := newResolver(t, dir, func(o *parseit.Options) {
		o.EnvPrefix = "SCANTEST_"
		o.Args = []string{
			"--port", "9090",
			"--debug",
			"--timeout", "2m30s",
			"--tags", "prod,staging",
			"--ip", "10.0.0.7",
		}
	})

	cfg := AppConfig{Ignored: "keep", internal: "keep"}
	require.NoError(t, r.Scan(&cfg))

	assert.Equal(t, "file-host", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 0.5, cfg.Ratio)
	assert.Equal(t, 150*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"prod", "staging"}, cfg.Tags)
	assert.Equal(t, []int{80, 443}, cfg.Ports)
	assert.True(t, net.ParseIP("10.0.0.7").Equal(cfg.IP))
	require.NotNil(t, cfg.Subnet)
	assert.Equal(t, "192.168.1.0/24", cfg.Subnet.String())
	require.NotNil(t, cfg.Endpoint)
	assert.Equal(t, "api.example.com:8443", cfg.Endpoint.Host)
	assert.Equal(t, "1.2", cfg.Version)
	assert.Equal(t, "eu", cfg.Region)
	assert.Equal(t, "keep", cfg.Ignored)
	assert.Equal(t, "keep", cfg.internal)
}

func TestScanDefaultsAndRequired(t *testing.T) {
	type Settings struct {
		Host  string `parseit:"scan_host"`
		Port  int    `parseit:"scan_port"`
		Token string `parseit:"scan_token,required"`
		Key   string `parseit:"scan_key,required"`
	}

	r := newResolver(t, t.TempDir(), func(o *parseit.Options) {
		o.EnvPrefix = "SCANTEST_"
	})

	t.Run("FieldValuesAreDefaults", func(t *testing.T) {
		t.Setenv("SCANTEST_SCAN_TOKEN", "t")
		t.Setenv("SCANTEST_SCAN_KEY", "k")

		cfg := Settings{Host: "localhost", Port: 8080}
		require.NoError(t, r.Scan(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "t", cfg.Token)
		assert.Equal(t, "k", cfg.Key)
	})

	t.Run("AllMissingRequiredReported", func(t *testing.T) {
		var cfg Settings
		err := r.Scan(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, parseit.ErrMissingRequired)
		assert.Contains(t, err.Error(), "scan_token")
		assert.Contains(t, err.Error(), "scan_key")
	})

	t.Run("InvalidTarget", func(t *testing.T) {
		var cfg Settings
		assert.Error(t, r.Scan(cfg))
		assert.Error(t, r.Scan((*Settings)(nil)))

		n := 1
		assert.Error(t, r.Scan(&n))
	})
}

func TestScanAddressFields(t *testing.T) {
	type Endpoints struct {
		Subnet net.IPNet `parseit:"subnet"`
		Public url.URL   `parseit:"public"`
	}

	r := newResolver(t, t.TempDir(), func(o *parseit.Options) {
		o.EnvPrefix = "ADDRTEST_"
		o.Args = []string{"--subnet", "10.1.0.0/16", "--public", "http://example.org/app"}
	})

	var cfg Endpoints
	require.NoError(t, r.Scan(&cfg))
	assert.Equal(t, "10.1.0.0/16", cfg.Subnet.String())
	assert.Equal(t, "example.org", cfg.Public.Host)
	assert.Equal(t, "/app", cfg.Public.Path)

	t.Run("Invalid", func(t *testing.T) {
		cases := map[string]struct {
			args []string
			want string
		}{
			"IP":   {[]string{"--ip", "not-an-ip"}, "invalid IP address"},
			"CIDR": {[]string{"--subnet", "10.1.0.0/99"}, "invalid CIDR"},
			"URL":  {[]string{"--public", "http://[::1"}, "invalid URL"},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				r := newResolver(t, t.TempDir(), func(o *parseit.Options) {
					o.EnvPrefix = "ADDRTEST_"
					o.Args = tc.args
				})
				var target struct {
					IP     net.IP     `parseit:"ip"`
					Subnet *net.IPNet `parseit:"subnet"`
					Public *url.URL   `parseit:"public"`
				}
				err := r.Scan(&target)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.want)
			})
		}
	})
}
