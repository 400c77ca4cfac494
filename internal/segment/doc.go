// Package segment splits normalized transcript text into ordered, attributed
// passages in a single left-to-right scan. Lines before the first speaker
// label accumulate under the sentinel speaker "Unknown".
package segment
