package colormath

// Bradford cone response matrix
var Bradford = Mat3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

// WhitePointXYZConvertMatrix constructs the matrix that adapts XYZ values from the
// source white to the target white using the Bradford method:
//
//	inverse(B) * diag(B*target / B*source) * B
//
// A zero cone response for source gives non-finite entries.
func WhitePointXYZConvertMatrix(source, target XYZ) Mat3 {
	src := Bradford.MulVec(source.Vec())
	tgt := Bradford.MulVec(target.Vec())
	scale := Diagonal(Vec3{tgt[0] / src[0], tgt[1] / src[1], tgt[2] / src[2]})
	return Bradford.Inverse().Mul(scale.Mul(Bradford))
}

// AdaptXYZ adapts a single value from source white to target white.
func AdaptXYZ(value, source, target XYZ) XYZ {
	return VectorToXYZ(WhitePointXYZConvertMatrix(source, target).MulVec(value.Vec()))
}
