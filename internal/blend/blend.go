package blend

// SourceOver composites a premultiplied source pixel over a premultiplied
// destination pixel.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	switch sa {
	case 0:
		return dr, dg, db, da
	case 255:
		return sr, sg, sb, sa
	}
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// SpanOver composites a run of premultiplied RGBA pixels from src over dst.
// Both slices hold 4 bytes per pixel; the shorter one bounds the run.
func SpanOver(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		sa := src[i+3]
		if sa == 0 {
			continue
		}
		if sa == 255 {
			copy(dst[i:i+4], src[i:i+4])
			continue
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = SourceOver(
			src[i], src[i+1], src[i+2], sa,
			dst[i], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}
