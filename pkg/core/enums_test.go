package core

import "testing"

// TestCompareResultRank tests CompareResult.Rank.
func TestCompareResultRank(t *testing.T) {
	tests := []struct {
		result CompareResult
		rank   int
	}{
		{CompareResultEqual, 0},
		{CompareResultDifferentMetadataOnly, 1},
		{CompareResultLeftNewer, 2},
		{CompareResultRightNewer, 3},
		{CompareResultLeftOnly, 4},
		{CompareResultRightOnly, 5},
		{CompareResultDifferentContent, 6},
		{CompareResultConflict, 7},
	}
	for _, test := range tests {
		if rank := test.result.Rank(); rank != test.rank {
			t.Errorf("%s: rank does not match expected: %d != %d", test.result, rank, test.rank)
		}
	}
}

// TestCompareResultRoundTrip tests that every recognized CompareResult
// value round-trips through MarshalText/UnmarshalText.
func TestCompareResultRoundTrip(t *testing.T) {
	results := []CompareResult{
		CompareResultEqual, CompareResultLeftOnly, CompareResultRightOnly,
		CompareResultLeftNewer, CompareResultRightNewer,
		CompareResultDifferentContent, CompareResultDifferentMetadataOnly,
		CompareResultConflict,
	}
	for _, result := range results {
		text, err := result.MarshalText()
		if err != nil {
			t.Fatalf("%s: marshal failed: %v", result, err)
		}
		var decoded CompareResult
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("%s: unmarshal failed: %v", result, err)
		}
		if decoded != result {
			t.Errorf("round trip mismatch: %s != %s", decoded, result)
		}
		if !result.Supported() {
			t.Errorf("%s: expected Supported to report true", result)
		}
	}
}

// TestCompareResultUnmarshalInvalid tests that an unrecognized compare
// result text value is rejected.
func TestCompareResultUnmarshalInvalid(t *testing.T) {
	var result CompareResult
	if err := result.UnmarshalText([]byte("NotAResult")); err == nil {
		t.Fatal("unmarshal succeeded for invalid compare result")
	}
}

// TestSyncOperationIsDeletion tests SyncOperation.IsDeletion.
func TestSyncOperationIsDeletion(t *testing.T) {
	tests := []struct {
		operation SyncOperation
		deletion  bool
	}{
		{SyncOperationDeleteLeft, true},
		{SyncOperationDeleteRight, true},
		{SyncOperationOverwriteLeft, false},
		{SyncOperationCreateRight, false},
		{SyncOperationDoNothing, false},
	}
	for _, test := range tests {
		if deletion := test.operation.IsDeletion(); deletion != test.deletion {
			t.Errorf("%s: IsDeletion does not match expected: %t != %t", test.operation, deletion, test.deletion)
		}
	}
}

// TestSyncOperationTargetSide tests SyncOperation.TargetSide.
func TestSyncOperationTargetSide(t *testing.T) {
	tests := []struct {
		operation SyncOperation
		side      SyncDirection
	}{
		{SyncOperationCreateLeft, SyncDirectionLeft},
		{SyncOperationOverwriteRight, SyncDirectionRight},
		{SyncOperationDeleteLeft, SyncDirectionLeft},
		{SyncOperationCopyMetadataToRight, SyncDirectionRight},
		{SyncOperationDoNothing, SyncDirectionNone},
		{SyncOperationEqual, SyncDirectionNone},
		{SyncOperationUnresolvedConflict, SyncDirectionNone},
	}
	for _, test := range tests {
		if side := test.operation.TargetSide(); side != test.side {
			t.Errorf("%s: target side does not match expected: %s != %s", test.operation, side, test.side)
		}
	}
}
