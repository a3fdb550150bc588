// Package plot3d renders small 3D scientific plots to static images.
//
// # Overview
//
// plot3d draws surface meshes, contour lines, tube curves and arrow
// fields onto a gg drawing context and exports them as PNG. It is built
// for documentation galleries: a handful of figures, each assembled from a
// few objects with literal styling, rendered headless and deterministically.
//
// # Quick Start
//
//	g, _ := field.MGrid2(-10, 10, 0.5, -10, 10, 0.5)
//	h := field.NewScalar2(g, func(x, y float64) float64 {
//	    return 1 / (1 + (x*x+y*y)/16)
//	})
//
//	fig := plot3d.NewFigure(1, plot3d.WithBackground(gg.White))
//	fig.Mesh(g, h, plot3d.WithExtent(0, 1, 0, 1, 0, 1))
//	fig.Axes(plot3d.WithAxisLabels("x", "y", "z"))
//	fig.Title("h(x,y)", 0.4)
//
//	if err := fig.SavePNG("mesh.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Figures and Sessions
//
// Every drawing call takes an explicit *Figure. There is no "current
// figure": a Session keeps figures by numeric id so that a program can
// build them in one pass and select them for export in another.
//
// # Coordinate System
//
// Scene coordinates are right-handed with z up. An object's data bounds
// are mapped onto its extent, if one is given, before projection. The
// Camera uses azimuth and elevation in degrees, with elevation measured
// from the +z axis.
//
// # Rendering
//
// Objects are reduced to flat primitives (shaded quads, line segments,
// arrows) which are sorted back to front and painted with gg's software
// rasterizer. Axes and titles are drawn last, on top of the scene.
package plot3d
