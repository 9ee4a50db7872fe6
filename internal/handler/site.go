package handler

import "net/http"

// SiteHandler serves storefront configuration, currently just the WhatsApp
// ordering number the client embeds in its wa.me deep links.
type SiteHandler struct {
	whatsAppNumber string
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(whatsAppNumber string) *SiteHandler {
	return &SiteHandler{whatsAppNumber: whatsAppNumber}
}

// HandleSiteInfo handles GET /api/site requests.
func (h *SiteHandler) HandleSiteInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"whatsappNumber": h.whatsAppNumber})
}
