package handlers

import "almil.org/almil-web/internal/config"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
}

// AnalyticsFrom copies the configured identifiers.
func AnalyticsFrom(c config.AnalyticsConfig) Analytics {
	return Analytics{GA4MeasurementID: c.GA4MeasurementID, GTMContainerID: c.GTMContainerID}
}

// Enabled reports whether any tag should be rendered.
func (a Analytics) Enabled() bool { return a.GA4MeasurementID != "" || a.GTMContainerID != "" }
