// Package tikz writes plots as tikz-network LaTeX.
//
// Every node becomes a \Vertex and every edge an \Edge command. Attribute
// values are written as tikz-network options using the option names of the
// style attribute table (node_size as size, edge_width as lw); boolean
// attributes such as edge_directed become bare flags (Direct) when true.
//
//	\begin{tikzpicture}
//	\clip (0,0) rectangle (6.0,6.0);
//	\Vertex[x=0.350,y=5.650,size=0.5,color=red]{a}
//	\Edge[,lw=1.0,Direct](a)(b)
//	\end{tikzpicture}
//
// With standalone output the picture is wrapped in a compilable
// document using the standalone class.
//
// [Prepare] and [Format] are shared with the node and edge list writer in
// package table, which emits the same options as CSV columns.
package tikz
