// Package api exposes the interface codec over HTTP.
//
// All endpoints live under /api/v1 and exchange JSON. Successful responses
// are wrapped in {"data": ...}; failures use {"error": {"code", "message"}}
// where the message of a rejected field is the codec's reason verbatim.
//
//	POST /api/v1/interface/validate  {"fields": {"PrivateKey": "...", ...}}
//	POST /api/v1/interface/render    {"private_key": "...", "address": "10.0.0.1/24", "listen_port": 51820}
//	POST /api/v1/interface/parse     {"text": "[Interface]\n..."}
//	POST /api/v1/interface/hooks     {"fields": {...}, "interface_name": "wg0"}
//	POST /api/v1/keys
//	POST /api/v1/keys/public         {"private_key": "..."}
//	GET  /api/v1/health
//
// Handlers keep no state between requests; every request builds its own
// values.
package api
