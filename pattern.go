package tornread

import "encoding/json"

// CorruptPattern returns the status value a torn read produces: the
// target's backing data observed through the baseline's length. For
// baseline "canceled" and target "cancelled" that is "cancelle".
//
// Target must be at least as long as baseline; [Config.Validate] enforces
// the stricter requirement that it is strictly longer and that the
// pattern differs from the baseline, without which a torn read would be
// indistinguishable from a normal observation.
func CorruptPattern(baseline, target string) string {
	return target[:len(baseline)]
}

// corruptSnapshot returns the exact serialized form the collector matches
// against observations. Matching the full serialization, not a substring,
// rules out false positives on any other observed value.
func corruptSnapshot(baseline, target string) ([]byte, error) {
	return json.Marshal(&Record{Status: CorruptPattern(baseline, target)})
}
