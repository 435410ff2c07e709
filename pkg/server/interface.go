/*
Package server implements msgpack IPC for type hint services.

The server reads msgpack encoded requests from stdin and writes one msgpack
encoded response per request to stdout. Logs go to stderr so stdout stays a
clean channel.

# IPC

Every request carries an ID that is echoed in its response. The action
field selects the operation and defaults to "estimate".

Estimate requests send the parameter name and the active document, either
inline or as a URI the server reads through its workspace:

	{"id": "req_001", "param": "count", "uri": "file:///proj/main.py", "text": "...", "prefix": "i", "l": 8}

A client that only knows the cursor may omit "param" and send the byte
offset right after the typed ':' as "o"; the parameter is read from that line.

The server responds with suggestions in rank order. Estimated hints come
first and carry "e": true; the remaining built-in types and typing forms follow:

	{"id": "req_001", "s": [{"h": "int", "r": 1, "e": true}, {"h": "bool", "r": 2}], "c": 2, "t": 145}

Times are in microseconds.

Config requests read or change the workspace search settings at runtime:

	{"id": "cfg_001", "action": "get_config"}
	{"id": "cfg_002", "action": "set_config", "search_enabled": false, "search_limit": 20}

Failed requests get an error response with an HTTP like code:

	{"id": "req_002", "e": "missing param", "c": 400}
*/
package server

// Request is the union of every message a client can send.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"` // "estimate", "health", "get_config", "set_config"

	// estimate
	Param  string `msgpack:"param,omitempty"`
	URI    string `msgpack:"uri,omitempty"`
	Text   string `msgpack:"text,omitempty"`
	Prefix string `msgpack:"prefix,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	// Offset locates the cursor after a typed ':' when Param is omitted.
	Offset *int `msgpack:"o,omitempty"`

	// set_config
	SearchEnabled *bool `msgpack:"search_enabled,omitempty"`
	SearchLimit   *int  `msgpack:"search_limit,omitempty"`
}

// HintSuggestion - minimal suggestion response
type HintSuggestion struct {
	Hint      string `msgpack:"h"`
	Rank      uint16 `msgpack:"r"`
	Estimated bool   `msgpack:"e,omitempty"`
}

// EstimateResponse - estimate response
type EstimateResponse struct {
	ID          string           `msgpack:"id"`
	Suggestions []HintSuggestion `msgpack:"s"`
	Count       int              `msgpack:"c"`
	TimeTaken   int64            `msgpack:"t"`
}

// ConfigResponse - config operation response
type ConfigResponse struct {
	ID            string `msgpack:"id"`
	Status        string `msgpack:"status"`
	SearchEnabled bool   `msgpack:"search_enabled"`
	SearchLimit   int    `msgpack:"search_limit"`
	Include       string `msgpack:"include,omitempty"`
	ConfigPath    string `msgpack:"config_path,omitempty"`
}

// StatusResponse answers health checks and signals readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
