package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"glowfolio-backend/pkg/logger"
)

func (h *PageHandler) basePageData(title, description string, extra gin.H) gin.H {
	data := gin.H{
		"Title":       fmt.Sprintf("%s - %s", title, h.config.SiteName),
		"Description": description,
		"Site": gin.H{
			"Name": h.config.SiteName,
			"URL":  h.config.SiteURL,
		},
	}

	for k, v := range extra {
		data[k] = v
	}

	return data
}

func (h *PageHandler) renderTemplate(c *gin.Context, templateName, title, description string, extra gin.H) {
	data := h.basePageData(title, description, extra)
	h.renderWithLayout(c, http.StatusOK, "base.html", templateName+".html", data)
}

func (h *PageHandler) renderError(c *gin.Context, status int, title, message string) {
	data := h.basePageData(title, message, gin.H{"Status": status, "Message": message, "NoIndex": true})
	h.renderWithLayout(c, status, "base.html", "error.html", data)
}

func (h *PageHandler) renderWithLayout(c *gin.Context, status int, layout, content string, data gin.H) {
	if noIndex, ok := data["NoIndex"].(bool); ok && noIndex {
		c.Header("X-Robots-Tag", "noindex, nofollow")
	}

	contentTmpl := h.pages.Lookup(content)
	if contentTmpl == nil {
		logger.Error(nil, "Content template not found", map[string]interface{}{"template": content})
		c.String(http.StatusInternalServerError, "template not found")
		return
	}

	buf, err := executeTemplate(contentTmpl, data)
	if err != nil {
		logger.Error(err, "Failed to render content", map[string]interface{}{"template": content})
		c.String(http.StatusInternalServerError, "failed to render content")
		return
	}

	data["Content"] = template.HTML(buf)

	layoutTmpl := h.pages.Lookup(layout)
	if layoutTmpl == nil {
		logger.Error(nil, "Layout template not found", map[string]interface{}{"template": layout})
		c.String(http.StatusInternalServerError, "template not found")
		return
	}

	output, err := executeTemplate(layoutTmpl, data)
	if err != nil {
		logger.Error(err, "Failed to render layout", map[string]interface{}{"template": layout})
		c.String(http.StatusInternalServerError, "failed to render layout")
		return
	}

	c.Data(status, "text/html; charset=utf-8", output)
}

func executeTemplate(tmpl *template.Template, data gin.H) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// resolveAbsoluteURL joins path onto the configured site URL, falling back to
// the request's scheme and host.
func (h *PageHandler) resolveAbsoluteURL(path string, r *http.Request) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if base := strings.TrimSuffix(strings.TrimSpace(h.config.SiteURL), "/"); base != "" {
		return base + path
	}

	scheme := requestScheme(r)
	host := requestHost(r)
	if scheme == "" || host == "" {
		return path
	}
	return scheme + "://" + host + path
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return ""
	}

	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		value := strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
		if value != "" {
			return value
		}
	}

	if r.TLS != nil {
		return "https"
	}

	return "http"
}

func requestHost(r *http.Request) string {
	if r == nil {
		return ""
	}

	if forwardedHost := strings.TrimSpace(r.Header.Get("X-Forwarded-Host")); forwardedHost != "" {
		if host := strings.TrimSpace(strings.Split(forwardedHost, ",")[0]); host != "" {
			return host
		}
	}

	if r.Host != "" {
		return r.Host
	}

	if r.URL != nil {
		return r.URL.Host
	}

	return ""
}
