/*
Package console provides the per-server scrollback buffer.

Each managed server has one bounded Buffer (500 lines) holding the most
recent console output. The log-follow task appends lines as the container
produces them; WebSocket sessions replay the buffer on connect and then
stream live lines. When a server is deleted its buffer is dropped from the
Store along with the rest of its state.

The buffer is a plain bounded slice under a mutex: insertion order is
preserved, the oldest line is evicted at capacity, and Lines returns a
snapshot so readers never observe concurrent mutation.
*/
package console
