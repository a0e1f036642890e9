package motion

// InterceptWrite implements WriteHook. Inside a scope, with actions enabled
// and the filter accepting t, the write is turned into an animation from the
// value on screen to the newly committed model value. Otherwise write simply
// runs.
func (a *Animator) InterceptWrite(t Target, path string, write func()) {
	ctx := a.context
	if ctx == nil || a.actionsDisabled || !alive(t) || !a.filter(Candidate{target: t}) {
		write()
		return
	}

	oldModel, hadModel := t.ModelValue(path)
	presentation, onScreen := t.PresentationValue(path)
	from := oldModel
	if onScreen && !ctx.options.fromModelValue {
		from = presentation
	}

	write()

	to, ok := t.ModelValue(path)
	if !ok || !hadModel {
		return
	}
	if !onScreen {
		presentation = to
	}
	ctx.recordMutation(t, path, presentation)
	a.synthesize(t, path, oldModel, from, to, ctx)
}
