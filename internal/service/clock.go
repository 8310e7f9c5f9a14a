package service

import "time"

// timeNow is swapped out in tests that need a fixed calendar day.
var timeNow = time.Now
