package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAnimationOutsideScopeWarns(t *testing.T) {
	a, logs := newObservedAnimator(0)
	ft := newFakeTarget()

	g := a.AddAnimation(ft, "position", Val(Point(0, 0)), Val(Point(1, 1)))
	assert.Nil(t, g)
	assert.Empty(t, ft.keys)
	assert.Equal(t, 1, warningsOfKind(logs, WarnOutsideScope))
}

func TestAddAnimationIsNeverAdditive(t *testing.T) {
	a, _ := newObservedAnimator(0)
	ft := newFakeTarget()

	var g *Group
	a.Animate(Scope{Duration: Abs(1)}, func() {
		g = a.AddAnimation(ft, "position", Val(Point(0, 0)), Val(Point(10, 0)))
	})
	require.NotNil(t, g)
	assert.False(t, g.IsAdditive())
	assert.Equal(t, Point(0, 0), g.Animations[0].From)
	assert.Equal(t, Point(10, 0), g.Animations[0].To)
	// The model is untouched.
	v, _ := ft.ModelValue("position")
	assert.Equal(t, Point(0, 0), v)
}

func TestAddAnimationPlaceholders(t *testing.T) {
	a, _ := newObservedAnimator(0)
	ft := newFakeTarget()
	ft.model["opacity"] = Scalar(0.8)

	a.Animate(Scope{Duration: Abs(1)}, func() {
		// No presentation state: falls back to the model.
		g := a.AddAnimation(ft, "opacity", PresentationValue, Val(Scalar(0)))
		assert.Equal(t, Scalar(0.8), g.Animations[0].From)

		ft.presentation = map[string]Value{"opacity": Scalar(0.3)}
		g = a.AddAnimation(ft, "opacity", PresentationValue, ModelValue)
		assert.Equal(t, Scalar(0.3), g.Animations[0].From)
		assert.Equal(t, Scalar(0.8), g.Animations[0].To)

		g = a.Static(ft, "opacity", Val(Scalar(0.5)))
		assert.Equal(t, g.Animations[0].From, g.Animations[0].To)
	})
}

func TestAddAnimationUnresolvedPath(t *testing.T) {
	a, _ := newObservedAnimator(0)
	ft := newFakeTarget()
	a.Animate(Scope{}, func() {
		assert.Nil(t, a.AddAnimation(ft, "shadow", ModelValue, Val(Scalar(1))))
		assert.Nil(t, a.AddAnimation(ft, "opacity", Val(Value{}), Val(Scalar(1))))
	})
	assert.Empty(t, ft.keys)
}

func TestProxyKeyPath(t *testing.T) {
	a, _ := newObservedAnimator(0)
	ft := newFakeTarget()
	ft.model["bounds"] = RectValue(NewRect(0, 0, 10, 20))

	kp := a.Proxy(ft).Key("bounds").Sub("size").Sub("width")
	assert.Equal(t, "bounds.size.width", kp.Path())
	assert.Equal(t, Scalar(10), kp.Value())

	var g *Group
	a.Animate(Scope{Duration: Abs(1)}, func() {
		g = kp.To(Scalar(30))
	})
	require.NotNil(t, g)
	assert.Equal(t, "bounds", g.Key)
	assert.Equal(t, "bounds.size.width", g.Animations[0].KeyPath)
	assert.Equal(t, Scalar(10), g.Animations[0].From)
	assert.Equal(t, Scalar(30), g.Animations[0].To)
}

func TestProxyPanicsOnInvalidPath(t *testing.T) {
	a, _ := newObservedAnimator(0)
	ft := newFakeTarget()

	assert.PanicsWithValue(t, `motion: target has no animatable property "shadow"`, func() {
		a.Proxy(ft).Key("shadow")
	})
	assert.PanicsWithValue(t, `motion: "width" is not a component of point "position"`, func() {
		a.Proxy(ft).Key("position").Sub("width")
	})
	assert.NotPanics(t, func() {
		a.Proxy(ft).Key("position").Sub("x")
	})
}

func TestEndpointString(t *testing.T) {
	assert.Equal(t, "presentationValue", PresentationValue.String())
	assert.Equal(t, "modelValue", ModelValue.String())
	assert.Equal(t, "point", Val(Point(1, 2)).String())
}
