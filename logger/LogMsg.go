package logger

const MatchStartMsg = "比賽開始 match id: %s, 時間: %d 秒"
const MatchOverMsg = "比賽結束 match id: %s, %s 獲勝 比分 %d:%d"

const PlayerScoredMsg = "玩家得分 match id: %s, 比分 %d:%d"
const ComputerScoredMsg = "電腦得分 match id: %s, 比分 %d:%d"

const InputDroppedMsg = "操作過多，丟棄 %s"
const LoopStoppedMsg = "遊戲迴圈已停止"

const ScreenInitFailMsg = "畫面初始化失敗: %v"
const ConfigLoadFailMsg = "讀取設定檔失敗: %v"
const ConfigLoadedMsg = "設定檔已載入 場地 %vx%v, 比賽 %d 秒, %d fps"
