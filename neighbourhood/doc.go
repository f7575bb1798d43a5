// Package neighbourhood builds, per client, a bounded list of nearby clients
// ordered by a proximity metric that blends travel distance with expected
// waiting time, expected time-warp, and prize. Local search restricts its
// move candidates to these lists instead of scanning every client pair.
//
// The top-k selection per client is a bounded max-heap built on
// container/heap, so building N neighbourhood lists of size k costs
// O(N^2 log k) instead of O(N^2 log N) from a full per-client sort.
package neighbourhood
