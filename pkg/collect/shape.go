package collect

//go:generate go run github.com/dmarkham/enumer -type Shape -trimprefix Shape -transform lower -output shape.gen.go

// Shape is the declared return shape of a data-access call.
type Shape int

const (
	// ShapeOne is a required single model.
	ShapeOne Shape = iota
	// ShapeMaybe is an optional single model.
	ShapeMaybe
	// ShapeSlice is a list of models.
	ShapeSlice
	// ShapeMaybeSlice is an optional list of models.
	ShapeMaybeSlice
	// ShapeNone discards the result.
	ShapeNone
)
