package core

import (
	"math"
	"strconv"
	"sync/atomic"
	"time"
)

var suffixes = [5]string{"B", "KB", "MB", "GB", "TB"}

func round(val float64, roundOn float64, places int) (newVal float64) {
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

func humanFileSize(size float64) string {
	if size < 1 {
		return "0 B"
	}
	base := math.Log(size) / math.Log(1024)
	getSize := round(math.Pow(1024, base-math.Floor(base)), .5, 2)
	getSuffix := suffixes[int(math.Floor(base))]
	return strconv.FormatFloat(getSize, 'f', -1, 64) + " " + getSuffix
}

// ProgressVerifier counts downloaded bytes and reports a human-readable
// running total every couple of seconds.
type ProgressVerifier struct {
	written    int64
	onProgress func(written string, done bool)
	printTimer *time.Ticker
	done       chan struct{}
}

func NewProgressVerifier(onProgress func(written string, done bool)) *ProgressVerifier {
	this := &ProgressVerifier{onProgress: onProgress}
	this.printTimer = time.NewTicker(2 * time.Second)
	this.done = make(chan struct{})
	go func() {
		for {
			select {
			case <-this.printTimer.C:
				this.onProgress(humanFileSize(float64(atomic.LoadInt64(&this.written))), false)
			case <-this.done:
				return
			}
		}
	}()
	return this
}

func (this *ProgressVerifier) Update(data []byte) {
	atomic.AddInt64(&this.written, int64(len(data)))
}

func (this *ProgressVerifier) Close() error {
	this.onProgress(humanFileSize(float64(atomic.LoadInt64(&this.written))), true)
	this.printTimer.Stop()
	close(this.done)
	return nil
}
