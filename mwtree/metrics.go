package mwtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var insertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mwtree_inserts_total",
	Help: "Values passed to Tree.Insert, by result (inserted or duplicate)",
}, []string{"result"})

var findsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mwtree_finds_total",
	Help: "Tree.Find lookups, by result (hit or miss)",
}, []string{"result"})

var nodesAllocated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "mwtree_nodes_allocated_total",
	Help: "Child nodes created when an insert descends past a full node",
})

var structuralOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mwtree_structural_ops_total",
	Help: "Whole-tree copy, move and clear operations",
}, []string{"op"})
