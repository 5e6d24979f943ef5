package outline

// RequestFocus records id as the one-shot focus target for the next render.
// Requesting focus on a collapsed Sub expands its owning Main.
func (o *Outline) RequestFocus(id string) bool {
	if o.indexOf(id) < 0 {
		return false
	}
	o.expandOwner(id)
	o.pendingFocus = id
	return true
}

// PendingFocus peeks at the current request without clearing it.
func (o *Outline) PendingFocus() string { return o.pendingFocus }

// ConsumeFocus returns and clears the pending request. A target that no longer
// exists is dropped silently (ok=false).
func (o *Outline) ConsumeFocus() (string, bool) {
	id := o.pendingFocus
	o.pendingFocus = ""
	if id == "" || o.indexOf(id) < 0 {
		return "", false
	}
	return id, true
}

// ClearFocus drops any pending request.
func (o *Outline) ClearFocus() { o.pendingFocus = "" }
