//go:build !unix

package frame

func notifyResize(chan<- struct{}) func() {
	return func() {}
}
