package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/maksimkurb/wgconf/src/internal/hashing"
	"github.com/maksimkurb/wgconf/src/internal/hooks"
	"github.com/maksimkurb/wgconf/src/internal/wgconf"
	"github.com/maksimkurb/wgconf/src/internal/wgfile"
)

func newInterfaceResponse(iface wgconf.Interface) InterfaceResponse {
	text := iface.String()
	return InterfaceResponse{
		Valid:     true,
		Interface: iface,
		Text:      text,
		Checksum:  hashing.SumString(text),
	}
}

// ValidateInterface builds an interface section from raw fields.
// POST /api/v1/interface/validate
func (h *Handler) ValidateInterface(w http.ResponseWriter, r *http.Request) {
	var req FieldsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	iface, err := wgconf.FromRawFields(req.Fields)
	if err == nil {
		err = wgconf.CheckLines(iface)
	}
	h.metrics.ObserveCodec("validate", err)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeJSONData(w, newInterfaceResponse(iface))
}

// RenderInterface renders typed JSON fields as canonical configuration text.
// POST /api/v1/interface/render
func (h *Handler) RenderInterface(w http.ResponseWriter, r *http.Request) {
	var iface wgconf.Interface
	if err := decodeBody(r, &iface); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteRequestTooLarge(w, maxBytesErr.Limit)
			return
		}
		if isDomainError(err) {
			h.metrics.ObserveCodec("render", err)
			WriteDomainError(w, err)
			return
		}
		WriteInvalidRequest(w, "Invalid request body: "+err.Error())
		return
	}

	h.metrics.ObserveCodec("render", nil)
	writeText(w, iface.String())
}

// ParseInterface parses configuration file text and validates its [Interface] section.
// POST /api/v1/interface/parse
func (h *Handler) ParseInterface(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	file, err := wgfile.Read(strings.NewReader(req.Text))
	if err != nil {
		h.metrics.ObserveCodec("parse", err)
		WriteDomainError(w, err)
		return
	}

	section, err := file.InterfaceSection()
	if err != nil {
		h.metrics.ObserveCodec("parse", err)
		WriteDomainError(w, err)
		return
	}

	iface, err := file.Interface()
	h.metrics.ObserveCodec("parse", err)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	sections := make([]string, 0, len(file.Sections))
	for _, s := range file.Others() {
		sections = append(sections, s.Header())
	}

	unknown := wgconf.UnknownFields(section.Fields)
	if unknown == nil {
		unknown = []string{}
	}

	writeJSONData(w, ParseResponse{
		InterfaceResponse: newInterfaceResponse(iface),
		UnknownFields:     unknown,
		Sections:          sections,
		SourceChecksum:    file.Checksum,
	})
}

// ExpandHooks returns PostUp/PostDown with %i replaced by the interface name.
// POST /api/v1/interface/hooks
func (h *Handler) ExpandHooks(w http.ResponseWriter, r *http.Request) {
	var req HooksRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	iface, err := wgconf.FromRawFields(req.Fields)
	h.metrics.ObserveCodec("hooks", err)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	name := req.InterfaceName
	if name == "" {
		name = h.cfg.General.InterfaceName
	}

	writeJSONData(w, HooksResponse{
		InterfaceName: name,
		PostUp:        hooks.ExpandInterfaceName(iface.PostUp(), name),
		PostDown:      hooks.ExpandInterfaceName(iface.PostDown(), name),
	})
}
