//go:build !shooterdebug

package shooter

func debugCheck(*Engine) {}
