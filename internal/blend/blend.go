// Package blend provides straight-alpha source-over compositing on 8-bit
// RGBA spans.
//
// Colors are non-premultiplied. Alpha is normalized to [0,1] for the math
// while color channels stay in the 0-255 scale on both sides:
//
//	outA = Sa + Da*(1-Sa)
//	outC = (Sc*Sa + Dc*Da*(1-Sa)) / outA
//
// Results are clamped to [0,255] and truncated to bytes.
package blend

// SourceOver blends one source pixel over one destination pixel.
// A fully transparent source returns the destination unchanged.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	if sa == 0 {
		return dr, dg, db, da
	}

	srcA := float32(sa) / 255
	dstA := float32(da) / 255
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA <= 0 {
		return 0, 0, 0, 0
	}

	dstW := dstA * invSrcA
	r = clampByte((float32(sr)*srcA + float32(dr)*dstW) / outA)
	g = clampByte((float32(sg)*srcA + float32(dg)*dstW) / outA)
	b = clampByte((float32(sb)*srcA + float32(db)*dstW) / outA)
	a = clampByte(outA * 255)
	return r, g, b, a
}

// SourceOverSpan blends src over dst in place, pixel by pixel.
// Both slices hold RGBA pixels; the shorter length wins. Pixels whose
// source alpha is 0 are not written.
func SourceOverSpan(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		sa := src[i+3]
		if sa == 0 {
			continue
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = SourceOver(
			src[i], src[i+1], src[i+2], sa,
			dst[i], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}

// clampByte truncates v to a byte after clamping it to [0,255].
func clampByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}
