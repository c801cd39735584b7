// Package shepherd models the diagnostic log format of the shepherd
// device-management agent.
//
// The agent writes one JSON object per line to its diagnostic log; older
// releases used a plain timestamped format, and both appear in the wild
// (an upgraded agent keeps appending to the same file). ParseLine accepts
// either, and anything unrecognizable is preserved as a message-only entry
// rather than dropped.
//
// JSON lines look like:
//
//	{"ts":"2025-06-01T10:32:15Z","level":"error","category":"install",
//	 "msg":"install failed","error_code":"SH-4021",
//	 "bundle_id":"com.example.editor","policy_id":"pol-7",
//	 "details":[{"label":"Attempt","value":"3"}]}
//
// The plain format:
//
//	2025-06-01 10:32:15 ERROR [install] – install failed (SH-4021)
//	    - Attempt: 3
//
// Indented "- Label: Value" continuation lines attach to the preceding
// entry. Error codes embedded in plain messages (SH-NNNN) are lifted into
// Entry.ErrorCode so the UI can attach explanations uniformly.
package shepherd
