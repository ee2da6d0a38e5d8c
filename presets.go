package zxcvbn

// InteractiveConfig returns a configuration tuned for latency-sensitive
// UIs such as a live password-strength meter updated on every keystroke.
//
// It skips the two most expensive matchers — the reversed-dictionary
// pass (a second full dictionary scan) and the l33t pass (a combinatorial
// substitution enumeration) — trading a small amount of recall on
// reversed or leetspeak-substituted dictionary words for consistently
// fast analysis.
//
// Suitable for:
//   - Signup/login form strength meters
//   - Any call site invoked on every keystroke
//
// Example:
//
//	cfg := zxcvbn.InteractiveConfig()
//	result, _ := zxcvbn.AnalyzeWithConfig(candidate, userInputs, cfg)
func InteractiveConfig() Config {
	cfg := DefaultConfig()
	cfg.DisableReverseDictionaryMatcher = true
	cfg.DisableL33tMatcher = true
	return cfg
}

// OfflineAuditConfig returns a configuration for batch analysis of an
// exported credential set, where latency doesn't matter and maximum
// recall does.
//
// Every matcher runs, including the expensive reversed-dictionary and
// l33t passes, and [MaxPasswordLength] is widened to accommodate long
// passphrases that an interactive meter would truncate.
//
// Suitable for:
//   - Breach-response password audits
//   - Periodic credential-hygiene sweeps
//
// Example:
//
//	cfg := zxcvbn.OfflineAuditConfig()
//	for _, pw := range exportedPasswords {
//		result, _ := zxcvbn.AnalyzeWithConfig(pw, nil, cfg)
//	}
func OfflineAuditConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxPasswordLength = 4096
	return cfg
}
