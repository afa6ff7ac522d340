package metadata

import (
	"testing"
)

type testClient struct {
	available bool
	calls     *int
}

func (c testClient) Available() bool { return c.available }

func (c testClient) Region() (string, error) {
	*c.calls++
	return "ap-northeast-1", nil
}

func resetCache() {
	region = ""
	regionError = nil
}

func TestRegionIsCached(t *testing.T) {
	resetCache()
	defer resetCache()
	var calls int
	newClient := func() (regionReader, error) {
		return testClient{available: true, calls: &calls}, nil
	}
	for i := 0; i < 2; i++ {
		if r, err := getRegion(newClient); err != nil {
			t.Fatal(err)
		} else if r != "ap-northeast-1" {
			t.Fatalf("region: %s != ap-northeast-1", r)
		}
	}
	if calls != 1 {
		t.Fatalf("Region() called %d times", calls)
	}
}

func TestNotOnAWS(t *testing.T) {
	resetCache()
	defer resetCache()
	var calls int
	newClient := func() (regionReader, error) {
		return testClient{calls: &calls}, nil
	}
	if _, err := getRegion(newClient); err == nil {
		t.Fatal("expected failure when metadata is unavailable")
	}
	if _, err := getRegion(newClient); err == nil {
		t.Fatal("expected cached failure")
	}
	if calls != 0 {
		t.Fatalf("Region() called %d times", calls)
	}
}
