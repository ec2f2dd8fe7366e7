package chaincfg

import (
	"crypto/rand"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/brickchain/brickd/wire"
	"github.com/pkg/errors"
)

// failingRandReader is an io.Reader that always fails, used to force errors
// from the random source.
type failingRandReader struct {
	err error
}

func (r failingRandReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestConvertSeeds(t *testing.T) {
	seeds := []SeedSpec6{
		ipv4Seed(192, 0, 2, 1, 8333),
		{
			Addr: [16]byte{0x20, 0x01, 0x0d, 0xb8, 15: 0x01},
			Port: 18444,
		},
		ipv4Seed(192, 0, 2, 200, 0),
	}
	wantAddrs := []string{"192.0.2.1:8333", "[2001:db8::1]:18444", "192.0.2.200:0"}

	now := time.Unix(1600000000, 0)
	for round := 0; round < 20; round++ {
		addresses, err := ConvertSeeds(seeds, now)
		if err != nil {
			t.Fatalf("ConvertSeeds: unexpected error: %v", err)
		}
		if len(addresses) != len(seeds) {
			t.Fatalf("ConvertSeeds: got %d addresses, want %d",
				len(addresses), len(seeds))
		}

		for i, na := range addresses {
			if na.String() != wantAddrs[i] {
				t.Errorf("ConvertSeeds #%d: got address %s, want %s", i,
					na, wantAddrs[i])
			}
			if len(na.IP) != net.IPv6len {
				t.Errorf("ConvertSeeds #%d: IP has %d bytes", i, len(na.IP))
			}
			if !net.IP(seeds[i].Addr[:]).Equal(na.IP) {
				t.Errorf("ConvertSeeds #%d: got IP %s", i, na.IP)
			}
			if na.Port != seeds[i].Port {
				t.Errorf("ConvertSeeds #%d: got port %d, want %d", i,
					na.Port, seeds[i].Port)
			}
			if na.Services != wire.SFNodeNetwork {
				t.Errorf("ConvertSeeds #%d: got services %s", i, na.Services)
			}

			earliest := now.Add(-2 * oneWeek)
			latest := now.Add(-oneWeek)
			if na.Timestamp.Before(earliest) || na.Timestamp.After(latest) {
				t.Errorf("ConvertSeeds #%d: timestamp %v outside [%v, %v]", i,
					na.Timestamp, earliest, latest)
			}
		}
	}
}

func TestConvertSeedsEmpty(t *testing.T) {
	addresses, err := ConvertSeeds(nil, time.Now())
	if err != nil {
		t.Fatalf("ConvertSeeds: unexpected error: %v", err)
	}
	if len(addresses) != 0 {
		t.Errorf("ConvertSeeds: got %d addresses from no seeds", len(addresses))
	}
}

// TestConvertSeedsRandomFailure ensures a failure of the system random source
// is returned by ConvertSeeds and makes mustConvertSeeds panic.
func TestConvertSeedsRandomFailure(t *testing.T) {
	fakeErr := errors.New("random source unavailable")
	reader := rand.Reader
	rand.Reader = failingRandReader{err: fakeErr}
	defer func() {
		rand.Reader = reader
	}()

	seeds := []SeedSpec6{ipv4Seed(192, 0, 2, 1, 8333)}
	addresses, err := ConvertSeeds(seeds, time.Now())
	if err == nil {
		t.Fatalf("ConvertSeeds: got %d addresses, want an error", len(addresses))
	}
	if addresses != nil {
		t.Errorf("ConvertSeeds: got addresses along with error %v", err)
	}
	if !strings.Contains(err.Error(), "failed to age seed address") {
		t.Errorf("ConvertSeeds: unexpected error message: %v", err)
	}
	if errors.Cause(err) != fakeErr {
		t.Errorf("ConvertSeeds: got error cause %v, want %v", errors.Cause(err), fakeErr)
	}

	// No seeds means no random draws.
	if _, err := ConvertSeeds(nil, time.Now()); err != nil {
		t.Errorf("ConvertSeeds: unexpected error for no seeds: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("mustConvertSeeds: did not panic")
		}
		if panicErr, ok := r.(error); !ok || errors.Cause(panicErr) != fakeErr {
			t.Errorf("mustConvertSeeds: unexpected panic value: %v", r)
		}
	}()
	mustConvertSeeds(seeds, time.Now())
}

// TestConvertSeedsIndependent ensures converted addresses do not alias the
// seed table.
func TestConvertSeedsIndependent(t *testing.T) {
	seeds := []SeedSpec6{ipv4Seed(192, 0, 2, 1, 8333)}
	addresses, err := ConvertSeeds(seeds, time.Now())
	if err != nil {
		t.Fatalf("ConvertSeeds: unexpected error: %v", err)
	}
	addresses[0].IP[15] = 2
	if seeds[0].Addr[15] != 1 {
		t.Errorf("ConvertSeeds: address shares memory with its seed")
	}
}

func TestFixedSeeds(t *testing.T) {
	tests := []struct {
		params *Params
		count  int
	}{
		{MainNetParams, len(mainNetSeeds)},
		{TestNetParams, len(testNetSeeds)},
		{RegressionNetParams, 0},
	}

	for _, test := range tests {
		if len(test.params.FixedSeeds) != test.count {
			t.Errorf("%s: got %d fixed seeds, want %d", test.params.Name,
				len(test.params.FixedSeeds), test.count)
		}
		for _, na := range test.params.FixedSeeds {
			if na.Port != test.params.DefaultPort {
				t.Errorf("%s: seed %s does not use the default port",
					test.params.Name, na)
			}
		}
	}
}
