package repositories

import "testing"

func TestNormalizeWindow(t *testing.T) {
	testCases := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{name: "passthrough", skip: 3, limit: 7, wantSkip: 3, wantLimit: 7},
		{name: "negative skip", skip: -1, limit: 10, wantSkip: 0, wantLimit: 10},
		{name: "zero limit", skip: 0, limit: 0, wantSkip: 0, wantLimit: defaultListLimit},
		{name: "negative limit", skip: 2, limit: -5, wantSkip: 2, wantLimit: defaultListLimit},
		{name: "limit just above max", skip: 0, limit: maxListLimit + 1, wantSkip: 0, wantLimit: maxListLimit},
		{name: "absurdly large limit", skip: 0, limit: 9000000000000000000, wantSkip: 0, wantLimit: maxListLimit},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			skip, limit := NormalizeWindow(testCase.skip, testCase.limit)
			if skip != testCase.wantSkip {
				t.Fatalf("expected skip %d, got %d", testCase.wantSkip, skip)
			}
			if limit != testCase.wantLimit {
				t.Fatalf("expected limit %d, got %d", testCase.wantLimit, limit)
			}
		})
	}
}
